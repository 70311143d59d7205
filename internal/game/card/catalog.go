package card

// catalog is the built-in deck of 80 IPL player cards.
var catalog = []*Card{
	// CSK
	{ID: 1, Name: "Ruturaj Gaikwad", Team: TeamCSK, Role: Batter, IsOverseas: false, Stats: Stats{Runs: 583, Wickets: 0, Catches: 8, Price: 6.00}},
	{ID: 2, Name: "Shivam Dube", Team: TeamCSK, Role: AllRounder, IsOverseas: false, Stats: Stats{Runs: 396, Wickets: 1, Catches: 4, Price: 4.00}},
	{ID: 3, Name: "Ravindra Jadeja", Team: TeamCSK, Role: AllRounder, IsOverseas: false, Stats: Stats{Runs: 267, Wickets: 8, Catches: 9, Price: 16.00}},
	{ID: 4, Name: "MS Dhoni", Team: TeamCSK, Role: Wicketkeeper, IsOverseas: false, Stats: Stats{Runs: 161, Wickets: 0, Catches: 10, Price: 12.00}},
	{ID: 5, Name: "Daryl Mitchell", Team: TeamCSK, Role: AllRounder, IsOverseas: true, Stats: Stats{Runs: 318, Wickets: 1, Catches: 6, Price: 14.00}},
	{ID: 6, Name: "Matheesha Pathirana", Team: TeamCSK, Role: Bowler, IsOverseas: true, Stats: Stats{Runs: 0, Wickets: 13, Catches: 2, Price: 0.20}},
	{ID: 7, Name: "Mustafizur Rahman", Team: TeamCSK, Role: Bowler, IsOverseas: true, Stats: Stats{Runs: 0, Wickets: 14, Catches: 3, Price: 2.00}},
	{ID: 8, Name: "Tushar Deshpande", Team: TeamCSK, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 17, Catches: 4, Price: 0.20}},
	// RCB
	{ID: 9, Name: "Virat Kohli", Team: TeamRCB, Role: Batter, IsOverseas: false, Stats: Stats{Runs: 741, Wickets: 0, Catches: 8, Price: 15.00}},
	{ID: 10, Name: "Faf du Plessis", Team: TeamRCB, Role: Batter, IsOverseas: true, Stats: Stats{Runs: 438, Wickets: 0, Catches: 10, Price: 7.00}},
	{ID: 11, Name: "Rajat Patidar", Team: TeamRCB, Role: Batter, IsOverseas: false, Stats: Stats{Runs: 395, Wickets: 0, Catches: 5, Price: 0.20}},
	{ID: 12, Name: "Dinesh Karthik", Team: TeamRCB, Role: Wicketkeeper, IsOverseas: false, Stats: Stats{Runs: 326, Wickets: 0, Catches: 8, Price: 5.50}},
	{ID: 13, Name: "Glenn Maxwell", Team: TeamRCB, Role: AllRounder, IsOverseas: true, Stats: Stats{Runs: 52, Wickets: 6, Catches: 4, Price: 11.00}},
	{ID: 14, Name: "Cameron Green", Team: TeamRCB, Role: AllRounder, IsOverseas: true, Stats: Stats{Runs: 255, Wickets: 10, Catches: 6, Price: 17.50}},
	{ID: 15, Name: "Mohammed Siraj", Team: TeamRCB, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 15, Catches: 2, Price: 7.00}},
	{ID: 16, Name: "Yash Dayal", Team: TeamRCB, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 15, Catches: 3, Price: 5.00}},
	// KKR
	{ID: 17, Name: "Sunil Narine", Team: TeamKKR, Role: AllRounder, IsOverseas: true, Stats: Stats{Runs: 488, Wickets: 17, Catches: 6, Price: 6.00}},
	{ID: 18, Name: "Phil Salt", Team: TeamKKR, Role: Wicketkeeper, IsOverseas: true, Stats: Stats{Runs: 435, Wickets: 0, Catches: 9, Price: 1.50}},
	{ID: 19, Name: "Shreyas Iyer", Team: TeamKKR, Role: Batter, IsOverseas: false, Stats: Stats{Runs: 351, Wickets: 0, Catches: 7, Price: 12.25}},
	{ID: 20, Name: "Venkatesh Iyer", Team: TeamKKR, Role: AllRounder, IsOverseas: false, Stats: Stats{Runs: 370, Wickets: 0, Catches: 5, Price: 8.00}},
	{ID: 21, Name: "Andre Russell", Team: TeamKKR, Role: AllRounder, IsOverseas: true, Stats: Stats{Runs: 222, Wickets: 19, Catches: 4, Price: 12.00}},
	{ID: 22, Name: "Rinku Singh", Team: TeamKKR, Role: Batter, IsOverseas: false, Stats: Stats{Runs: 168, Wickets: 0, Catches: 6, Price: 0.55}},
	{ID: 23, Name: "Mitchell Starc", Team: TeamKKR, Role: Bowler, IsOverseas: true, Stats: Stats{Runs: 0, Wickets: 17, Catches: 2, Price: 24.75}},
	{ID: 24, Name: "Varun Chakravarthy", Team: TeamKKR, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 21, Catches: 3, Price: 8.00}},
	// SRH
	{ID: 25, Name: "Travis Head", Team: TeamSRH, Role: Batter, IsOverseas: true, Stats: Stats{Runs: 567, Wickets: 0, Catches: 5, Price: 6.80}},
	{ID: 26, Name: "Abhishek Sharma", Team: TeamSRH, Role: AllRounder, IsOverseas: false, Stats: Stats{Runs: 484, Wickets: 0, Catches: 4, Price: 6.50}},
	{ID: 27, Name: "Heinrich Klaasen", Team: TeamSRH, Role: Wicketkeeper, IsOverseas: true, Stats: Stats{Runs: 479, Wickets: 0, Catches: 8, Price: 5.25}},
	{ID: 28, Name: "Nitish Kumar Reddy", Team: TeamSRH, Role: AllRounder, IsOverseas: false, Stats: Stats{Runs: 303, Wickets: 3, Catches: 6, Price: 0.20}},
	{ID: 29, Name: "Pat Cummins", Team: TeamSRH, Role: Bowler, IsOverseas: true, Stats: Stats{Runs: 136, Wickets: 18, Catches: 4, Price: 20.50}},
	{ID: 30, Name: "Bhuvneshwar Kumar", Team: TeamSRH, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 11, Catches: 2, Price: 4.20}},
	{ID: 31, Name: "T Natarajan", Team: TeamSRH, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 19, Catches: 1, Price: 4.00}},
	{ID: 32, Name: "Aiden Markram", Team: TeamSRH, Role: Batter, IsOverseas: true, Stats: Stats{Runs: 220, Wickets: 0, Catches: 4, Price: 2.60}},
	// RR
	{ID: 33, Name: "Sanju Samson", Team: TeamRR, Role: Wicketkeeper, IsOverseas: false, Stats: Stats{Runs: 531, Wickets: 0, Catches: 9, Price: 14.00}},
	{ID: 34, Name: "Riyan Parag", Team: TeamRR, Role: Batter, IsOverseas: false, Stats: Stats{Runs: 573, Wickets: 0, Catches: 6, Price: 3.80}},
	{ID: 35, Name: "Yashasvi Jaiswal", Team: TeamRR, Role: Batter, IsOverseas: false, Stats: Stats{Runs: 435, Wickets: 0, Catches: 5, Price: 4.00}},
	{ID: 36, Name: "Jos Buttler", Team: TeamRR, Role: Batter, IsOverseas: true, Stats: Stats{Runs: 359, Wickets: 0, Catches: 4, Price: 10.00}},
	{ID: 37, Name: "Shimron Hetmyer", Team: TeamRR, Role: Batter, IsOverseas: true, Stats: Stats{Runs: 113, Wickets: 0, Catches: 3, Price: 8.50}},
	{ID: 38, Name: "Trent Boult", Team: TeamRR, Role: Bowler, IsOverseas: true, Stats: Stats{Runs: 0, Wickets: 13, Catches: 2, Price: 8.00}},
	{ID: 39, Name: "Yuzvendra Chahal", Team: TeamRR, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 18, Catches: 3, Price: 6.50}},
	{ID: 40, Name: "Avesh Khan", Team: TeamRR, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 19, Catches: 2, Price: 10.00}},
	// MI
	{ID: 41, Name: "Rohit Sharma", Team: TeamMI, Role: Batter, IsOverseas: false, Stats: Stats{Runs: 417, Wickets: 0, Catches: 4, Price: 16.00}},
	{ID: 42, Name: "Suryakumar Yadav", Team: TeamMI, Role: Batter, IsOverseas: false, Stats: Stats{Runs: 345, Wickets: 0, Catches: 5, Price: 8.00}},
	{ID: 43, Name: "Tilak Varma", Team: TeamMI, Role: Batter, IsOverseas: false, Stats: Stats{Runs: 416, Wickets: 0, Catches: 6, Price: 1.70}},
	{ID: 44, Name: "Hardik Pandya", Team: TeamMI, Role: AllRounder, IsOverseas: false, Stats: Stats{Runs: 216, Wickets: 11, Catches: 4, Price: 15.00}},
	{ID: 45, Name: "Tim David", Team: TeamMI, Role: Batter, IsOverseas: true, Stats: Stats{Runs: 241, Wickets: 0, Catches: 5, Price: 8.25}},
	{ID: 46, Name: "Jasprit Bumrah", Team: TeamMI, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 20, Catches: 2, Price: 12.00}},
	{ID: 47, Name: "Gerald Coetzee", Team: TeamMI, Role: Bowler, IsOverseas: true, Stats: Stats{Runs: 0, Wickets: 13, Catches: 2, Price: 5.00}},
	{ID: 48, Name: "Mohammad Nabi", Team: TeamMI, Role: AllRounder, IsOverseas: true, Stats: Stats{Runs: 35, Wickets: 2, Catches: 3, Price: 1.50}},
	// LSG
	{ID: 49, Name: "KL Rahul", Team: TeamLSG, Role: Wicketkeeper, IsOverseas: false, Stats: Stats{Runs: 520, Wickets: 0, Catches: 11, Price: 17.00}},
	{ID: 50, Name: "Nicholas Pooran", Team: TeamLSG, Role: Wicketkeeper, IsOverseas: true, Stats: Stats{Runs: 499, Wickets: 0, Catches: 4, Price: 16.00}},
	{ID: 51, Name: "Marcus Stoinis", Team: TeamLSG, Role: AllRounder, IsOverseas: true, Stats: Stats{Runs: 388, Wickets: 4, Catches: 5, Price: 9.20}},
	{ID: 52, Name: "Quinton de Kock", Team: TeamLSG, Role: Wicketkeeper, IsOverseas: true, Stats: Stats{Runs: 250, Wickets: 0, Catches: 6, Price: 6.75}},
	{ID: 53, Name: "Ayush Badoni", Team: TeamLSG, Role: Batter, IsOverseas: false, Stats: Stats{Runs: 185, Wickets: 0, Catches: 4, Price: 0.20}},
	{ID: 54, Name: "Ravi Bishnoi", Team: TeamLSG, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 10, Catches: 3, Price: 4.00}},
	{ID: 55, Name: "Yash Thakur", Team: TeamLSG, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 11, Catches: 2, Price: 0.45}},
	{ID: 56, Name: "Naveen-ul-Haq", Team: TeamLSG, Role: Bowler, IsOverseas: true, Stats: Stats{Runs: 0, Wickets: 14, Catches: 2, Price: 0.50}},
	// DC
	{ID: 57, Name: "Rishabh Pant", Team: TeamDC, Role: Wicketkeeper, IsOverseas: false, Stats: Stats{Runs: 446, Wickets: 0, Catches: 11, Price: 16.00}},
	{ID: 58, Name: "Tristan Stubbs", Team: TeamDC, Role: Batter, IsOverseas: true, Stats: Stats{Runs: 378, Wickets: 3, Catches: 5, Price: 0.50}},
	{ID: 59, Name: "Jake Fraser-McGurk", Team: TeamDC, Role: Batter, IsOverseas: true, Stats: Stats{Runs: 330, Wickets: 0, Catches: 6, Price: 0.50}},
	{ID: 60, Name: "Abishek Porel", Team: TeamDC, Role: Wicketkeeper, IsOverseas: false, Stats: Stats{Runs: 327, Wickets: 0, Catches: 4, Price: 0.20}},
	{ID: 61, Name: "Axar Patel", Team: TeamDC, Role: AllRounder, IsOverseas: false, Stats: Stats{Runs: 235, Wickets: 11, Catches: 5, Price: 9.00}},
	{ID: 62, Name: "Kuldeep Yadav", Team: TeamDC, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 16, Catches: 2, Price: 5.25}},
	{ID: 63, Name: "Khaleel Ahmed", Team: TeamDC, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 17, Catches: 2, Price: 5.25}},
	{ID: 64, Name: "Mukesh Kumar", Team: TeamDC, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 17, Catches: 3, Price: 5.50}},
	// GT
	{ID: 65, Name: "Shubman Gill", Team: TeamGT, Role: Batter, IsOverseas: false, Stats: Stats{Runs: 426, Wickets: 0, Catches: 6, Price: 8.00}},
	{ID: 66, Name: "Sai Sudharsan", Team: TeamGT, Role: Batter, IsOverseas: false, Stats: Stats{Runs: 527, Wickets: 0, Catches: 4, Price: 0.20}},
	{ID: 67, Name: "David Miller", Team: TeamGT, Role: Batter, IsOverseas: true, Stats: Stats{Runs: 210, Wickets: 0, Catches: 5, Price: 3.00}},
	{ID: 68, Name: "Rahul Tewatia", Team: TeamGT, Role: AllRounder, IsOverseas: false, Stats: Stats{Runs: 188, Wickets: 0, Catches: 4, Price: 9.00}},
	{ID: 69, Name: "Rashid Khan", Team: TeamGT, Role: AllRounder, IsOverseas: true, Stats: Stats{Runs: 102, Wickets: 10, Catches: 6, Price: 15.00}},
	{ID: 70, Name: "Mohit Sharma", Team: TeamGT, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 13, Catches: 2, Price: 0.50}},
	{ID: 71, Name: "Noor Ahmad", Team: TeamGT, Role: Bowler, IsOverseas: true, Stats: Stats{Runs: 0, Wickets: 8, Catches: 1, Price: 0.30}},
	{ID: 72, Name: "Umesh Yadav", Team: TeamGT, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 8, Catches: 2, Price: 5.80}},
	// PBKS
	{ID: 73, Name: "Shashank Singh", Team: TeamPBKS, Role: Batter, IsOverseas: false, Stats: Stats{Runs: 354, Wickets: 0, Catches: 4, Price: 0.20}},
	{ID: 74, Name: "Prabhsimran Singh", Team: TeamPBKS, Role: Wicketkeeper, IsOverseas: false, Stats: Stats{Runs: 334, Wickets: 0, Catches: 3, Price: 0.60}},
	{ID: 75, Name: "Jonny Bairstow", Team: TeamPBKS, Role: Wicketkeeper, IsOverseas: true, Stats: Stats{Runs: 298, Wickets: 0, Catches: 4, Price: 6.75}},
	{ID: 76, Name: "Sam Curran", Team: TeamPBKS, Role: AllRounder, IsOverseas: true, Stats: Stats{Runs: 270, Wickets: 16, Catches: 6, Price: 18.50}},
	{ID: 77, Name: "Harshal Patel", Team: TeamPBKS, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 24, Catches: 4, Price: 11.75}},
	{ID: 78, Name: "Arshdeep Singh", Team: TeamPBKS, Role: Bowler, IsOverseas: false, Stats: Stats{Runs: 0, Wickets: 19, Catches: 3, Price: 4.00}},
	{ID: 79, Name: "Kagiso Rabada", Team: TeamPBKS, Role: Bowler, IsOverseas: true, Stats: Stats{Runs: 0, Wickets: 11, Catches: 2, Price: 9.25}},
	{ID: 80, Name: "Ashutosh Sharma", Team: TeamPBKS, Role: Batter, IsOverseas: false, Stats: Stats{Runs: 189, Wickets: 0, Catches: 2, Price: 0.20}},
}

const (
	TeamCSK  = "Chennai Super Kings"
	TeamDC   = "Delhi Capitals"
	TeamGT   = "Gujarat Titans"
	TeamKKR  = "Kolkata Knight Riders"
	TeamLSG  = "Lucknow Super Giants"
	TeamMI   = "Mumbai Indians"
	TeamPBKS = "Punjab Kings"
	TeamRCB  = "Royal Challengers Bengaluru"
	TeamRR   = "Rajasthan Royals"
	TeamSRH  = "Sunrisers Hyderabad"
)
